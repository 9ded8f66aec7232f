package advice

import (
	"fmt"

	"github.com/carepal/backend/internal/analysis/triage"
)

// DefaultEmergencyNumber is dialled in emergency and high-risk answers
// unless configured otherwise.
const DefaultEmergencyNumber = "911"

type playbook struct {
	headline string
	body     string
}

var playbooks = map[triage.EmergencyKind]playbook{
	triage.EmergencyChest: {"CHEST PAIN/HEART ATTACK - EMERGENCY", `**While waiting for help:**
- Have the person sit down and rest
- Loosen tight clothing
- If they have prescribed heart medication (like nitroglycerin), help them take it
- Stay with them and keep them calm
- If they become unconscious, start CPR if you know how

**DO NOT:**
- Drive them to the hospital yourself
- Give them aspirin unless specifically prescribed
- Leave them alone

**Time is critical - every minute counts!**`},
	triage.EmergencyBreathing: {"BREATHING EMERGENCY", `**While waiting for help:**
- Check if they're conscious and responsive
- If unconscious and not breathing, start CPR immediately
- If conscious but struggling to breathe:
  - Help them sit upright
  - Loosen tight clothing around neck/chest
  - Stay calm and reassure them
- If they have an inhaler (for asthma), help them use it

**DO NOT:**
- Panic or rush them
- Give them anything to eat or drink
- Leave them alone

**This is a life-threatening emergency!**`},
	triage.EmergencyUnconscious: {"UNCONSCIOUS PERSON - EMERGENCY", `**While waiting for help:**
- Check if they're breathing
- If breathing: place them on their side (recovery position)
- If NOT breathing: start CPR immediately
- Check for pulse
- Do NOT move them if you suspect spinal injury
- Stay with them and monitor their breathing

**Recovery Position:**
- Roll them onto their side
- Tilt head back slightly
- Bend top leg to keep them stable
- This prevents choking if they vomit

**DO NOT:**
- Try to wake them by shaking
- Give them anything to eat or drink
- Leave them alone

**This requires immediate medical attention!**`},
	triage.EmergencyBleeding: {"SEVERE BLEEDING - EMERGENCY", `**While waiting for help:**
- Apply direct pressure to the wound with clean cloth/towel
- If bleeding doesn't stop, apply more pressure
- Elevate the injured area above heart level (if possible)
- Do NOT remove objects stuck in the wound
- Keep pressure until help arrives

**If bleeding is from limb:**
- Apply pressure above the wound (between wound and heart)
- Use tourniquet only as last resort if bleeding won't stop

**DO NOT:**
- Remove objects from wound
- Use tourniquet unless absolutely necessary
- Panic - stay calm and focused

**Severe blood loss can be fatal quickly!**`},
	triage.EmergencyStroke: {"STROKE - EMERGENCY", `**Remember FAST:**
- **F**ace: Is one side drooping?
- **A**rms: Can they raise both arms?
- **S**peech: Is speech slurred or strange?
- **T**ime: Time is critical - call immediately!

**While waiting for help:**
- Keep them calm and still
- Do NOT give them anything to eat or drink
- Note the time symptoms started
- If they become unconscious, place in recovery position

**DO NOT:**
- Drive them to hospital yourself
- Give them aspirin
- Wait to see if symptoms improve

**Every minute counts with stroke!**`},
	triage.EmergencyChoking: {"CHOKING - EMERGENCY", `**If person is conscious:**
- Encourage them to cough forcefully
- If coughing doesn't work, perform Heimlich maneuver
- Stand behind them, place hands above navel
- Give quick upward thrusts until object is expelled

**If person is unconscious:**
- Start CPR immediately
- Check mouth for visible object (remove if seen)
- Continue CPR until help arrives

**DO NOT:**
- Slap them on the back
- Give them anything to drink
- Leave them alone

**Choking can be fatal within minutes!**`},
	triage.EmergencyAllergy: {"SEVERE ALLERGIC REACTION - EMERGENCY", `**While waiting for help:**
- If they have an EpiPen, help them use it immediately
- Help them lie down and elevate legs
- Loosen tight clothing
- Stay with them and monitor breathing
- If they become unconscious, start CPR

**Signs of severe reaction:**
- Difficulty breathing or swallowing
- Swelling of face, lips, tongue, or throat
- Rapid pulse, dizziness, or fainting
- Severe rash or hives

**DO NOT:**
- Give them anything to eat or drink
- Wait to see if symptoms improve
- Leave them alone

**This can be life-threatening quickly!**`},
	triage.EmergencyGeneral: {"MEDICAL EMERGENCY", `**While waiting for help:**
- Stay with the person
- Keep them calm and comfortable
- Do NOT give them anything to eat or drink
- Monitor their breathing and consciousness
- If they become unconscious, place in recovery position

**This requires immediate medical attention!**`},
}

// Emergency renders first-response instructions for kind, telling the user
// to call number. Unknown kinds get the general playbook.
func Emergency(kind triage.EmergencyKind, number string) string {
	if number == "" {
		number = DefaultEmergencyNumber
	}
	p, ok := playbooks[kind]
	if !ok {
		p = playbooks[triage.EmergencyGeneral]
	}
	return fmt.Sprintf("%s\n\n🚨 **%s**\n\n**CALL %s IMMEDIATELY!**\n\n%s", Disclaimer, p.headline, number, p.body)
}
